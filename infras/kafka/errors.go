package kafka

import "errors"

var ErrEmptyTopic = errors.New("kafka topic is required")
