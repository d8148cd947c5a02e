package booking

type ServiceType string

const (
	ServiceWedding     ServiceType = "wedding"
	ServiceEvent       ServiceType = "event"
	ServiceCommercial  ServiceType = "commercial"
	ServiceSocialMedia ServiceType = "social_media"
	ServiceRealEstate  ServiceType = "real_estate"
)

func (s ServiceType) Valid() bool {
	switch s {
	case ServiceWedding, ServiceEvent, ServiceCommercial, ServiceSocialMedia, ServiceRealEstate:
		return true
	}
	return false
}
