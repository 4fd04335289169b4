package handlers

// AppHandlers bundles every HTTP handler for route registration.
type AppHandlers struct {
	Auth          *AuthHandler
	Brand         *BrandHandler
	Customer      *CustomerHandler
	Trainer       *TrainerHandler
	TrainerPortal *TrainerPortalHandler
	Training      *TrainingHandler
	Application   *ApplicationHandler
	Registration  *RegistrationHandler
	Location      *LocationHandler
	Message       *MessageHandler
	Mailbox       *MailboxHandler
	Catalog       *CatalogHandler
	Search        *SearchHandler
	System        *SystemHandler
}
