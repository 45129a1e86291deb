package db

import "gorm.io/gorm"

// Repositories bundles every repository over one shared connection.
type Repositories struct {
	Users         *UserRepository
	Throws        *ThrowRepository
	Observations  *ObservationRepository
	Harvests      *HarvestRepository
	Notifications *NotificationRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:         NewUserRepository(database),
		Throws:        NewThrowRepository(database),
		Observations:  NewObservationRepository(database),
		Harvests:      NewHarvestRepository(database),
		Notifications: NewNotificationRepository(database),
	}
}
