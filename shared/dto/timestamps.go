package dto

import (
	"saylamc/shared/constant"
	"saylamc/shared/model"
	"saylamc/shared/timezone"
)

type Timestamps struct {
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func (t *Timestamps) FromModel(model model.Timestamps) {
	t.CreatedAt = timezone.Format(model.CreatedAt, constant.DateFormat)
	t.UpdatedAt = timezone.Format(model.UpdatedAt, constant.DateFormat)
}
