package handlers

// AppHandlers bundles every handler for route registration.
type AppHandlers struct {
	UserHandler        *UserHandler
	ApplicationHandler *ApplicationHandler
	AffiliationHandler *AffiliationHandler
	PreferencesHandler *PreferencesHandler
}
