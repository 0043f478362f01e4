package services

// ServiceContainer bundles every service for injection into the handlers.
type ServiceContainer struct {
	UserService        UserService
	ApplicationService ApplicationService
	AffiliationService AffiliationService
	PreferencesService PreferencesService
}
