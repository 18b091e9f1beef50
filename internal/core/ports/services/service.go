package services

// ServiceContainer bundles the service facades for route registration.
type ServiceContainer struct {
	Auth    AuthSvcFacade
	Profile ProfileSvcFacade
	Token   TokenSvcFacade
}
