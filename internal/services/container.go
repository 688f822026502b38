package services

import "servicehub_backend/internal/email"

// ServiceContainer bundles every service the application wires at startup.
type ServiceContainer struct {
	AuthService         *AuthService
	JobService          *JobService
	WizardService       *WizardService
	DashboardService    *DashboardService
	BidService          *BidService
	AdminService        *AdminService
	NotificationService *NotificationService
	EmailService        email.Provider
}
