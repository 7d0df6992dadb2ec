package dto

type AnalyticsDTO struct {
	Summary            SummaryDTO        `json:"summary"`
	BookingsPerService []ServiceCountDTO `json:"bookings_per_service"`
	BookingsPerStylist []StylistCountDTO `json:"bookings_per_stylist"`
}

type SummaryDTO struct {
	TotalUsers    int64  `json:"total_users"`
	TotalBookings int64  `json:"total_bookings"`
	TotalStylists int64  `json:"total_stylists"`
	TotalRevenue  string `json:"total_revenue"`
}

type ServiceCountDTO struct {
	ServiceName string `json:"service_name"`
	Count       int64  `json:"count"`
}

type StylistCountDTO struct {
	StylistName string `json:"stylist_name"`
	Count       int64  `json:"count"`
}
