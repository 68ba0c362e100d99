package dto

import (
	"reserve/internal/domains/room/model"
	"reserve/shared"
	gDto "reserve/shared/dto"
	gModel "reserve/shared/model"
	"reserve/shared/timezone"

	"github.com/google/uuid"
)

type AutoApprovalRequest struct {
	MinHour    map[string]float64 `json:"minHour"    validate:"omitempty,dive,keys,oneof=admin faculty student,endkeys,gte=-1"`
	MaxHour    map[string]float64 `json:"maxHour"    validate:"omitempty,dive,keys,oneof=admin faculty student,endkeys,gte=-1"`
	Conditions map[string]bool    `json:"conditions" validate:"omitempty,dive,keys,oneof=setup equipment staffing catering cleaning security,endkeys,omitempty"`
}

func (a *AutoApprovalRequest) toModel() *model.AutoApproval {
	if a == nil {
		return nil
	}

	return &model.AutoApproval{
		MinHour:    a.MinHour,
		MaxHour:    a.MaxHour,
		Conditions: a.Conditions,
	}
}

type CreateRoomSettingRequest struct {
	RoomID            string               `json:"roomId"            validate:"required,max=100"`
	Name              string               `json:"name"              validate:"required,max=100"`
	Capacity          int                  `json:"capacity"          validate:"omitempty,min=0"`
	ShouldAutoApprove *bool                `json:"shouldAutoApprove" validate:"omitempty"`
	AutoApproval      *AutoApprovalRequest `json:"autoApproval"      validate:"omitempty"`
}

func (c *CreateRoomSettingRequest) ToModel(tenant, user string) model.RoomSetting {
	return model.RoomSetting{
		ID:                uuid.NewString(),
		Tenant:            tenant,
		RoomID:            c.RoomID,
		Name:              c.Name,
		Capacity:          c.Capacity,
		ShouldAutoApprove: c.ShouldAutoApprove,
		AutoApproval:      c.AutoApproval.toModel(),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomSettingRequest struct {
	Name              string               `db:"name"                json:"name"              validate:"omitempty,max=100"`
	Capacity          *int                 `db:"capacity"            json:"capacity"          validate:"omitempty,min=0"`
	ShouldAutoApprove *bool                `db:"should_auto_approve" json:"shouldAutoApprove" validate:"omitempty"`
	AutoApproval      *AutoApprovalRequest `json:"autoApproval"      validate:"omitempty"`
}

// Fields returns the columns to update. A non-nil AutoApproval replaces the stored config.
func (u *UpdateRoomSettingRequest) Fields(user string) map[string]any {
	fields := shared.TransformFields(*u, user)
	if u.AutoApproval != nil {
		fields[model.FieldAutoApproval] = *u.AutoApproval.toModel()
	}

	return fields
}

type RoomSettingResponse struct {
	ID                string              `json:"id"`
	RoomID            string              `json:"roomId"`
	Name              string              `json:"name"`
	Capacity          int                 `json:"capacity"`
	ShouldAutoApprove *bool               `json:"shouldAutoApprove,omitempty"`
	AutoApproval      *model.AutoApproval `json:"autoApproval,omitempty"`
	gDto.Metadata
}

func (r *RoomSettingResponse) FromModel(model model.RoomSetting) {
	r.ID = model.ID
	r.RoomID = model.RoomID
	r.Name = model.Name
	r.Capacity = model.Capacity
	r.ShouldAutoApprove = model.ShouldAutoApprove
	r.AutoApproval = model.AutoApproval
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomSettingsResponse struct {
	Rooms     []RoomSettingResponse `json:"rooms"`
	TotalPage int                   `json:"totalPage"`
	TotalData int                   `json:"totalData"`
}

func (r *GetRoomSettingsResponse) FromModels(models []model.RoomSetting, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomSettingResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
