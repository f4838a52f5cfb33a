package dto

import "go-scheduler-api/modules/timeslot/entity"

// ListTimeslotsResponse carries the units of one host window
type ListTimeslotsResponse struct {
	Units []entity.TimeslotUnit `json:"units"`
}
