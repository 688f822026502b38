package handlers

// AppHandlers bundles every handler the router registers.
type AppHandlers struct {
	AuthHandler         *AuthHandler
	JobHandler          *JobHandler
	WizardHandler       *WizardHandler
	DashboardHandler    *DashboardHandler
	BidHandler          *BidHandler
	AdminHandler        *AdminHandler
	NotificationHandler *NotificationHandler
}
