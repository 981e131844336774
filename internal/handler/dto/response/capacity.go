package response

import (
	"time"

	"restaurant-reservations/internal/domain/reservation"
	"restaurant-reservations/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type CapacityConfigResponse struct {
	FrontCapacity   int                `json:"frontCapacity"`
	GalleryCapacity int                `json:"galleryCapacity"`
	HallCapacity    int                `json:"hallCapacity"`
	MaxAdvanceDays  int                `json:"maxAdvanceDays"`
	TotalCapacity   int                `json:"totalCapacity"`
	OpeningDays     []int              `json:"openingDays"`
	Turns           []reservation.Turn `json:"turns"`
	UpdatedAt       time.Time          `json:"updatedAt"`
}

func FromCapacityConfigView(view *queries.CapacityConfigView) (*CapacityConfigResponse, error) {
	var resp CapacityConfigResponse
	if err := copier.CopyWithOption(&resp, view, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	return &resp, nil
}
