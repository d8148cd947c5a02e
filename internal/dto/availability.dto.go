package dto

type AvailableTimesResponse struct {
	AvailableTimes []string `json:"available_times"`
	BookedTimes    []string `json:"booked_times"`
}
