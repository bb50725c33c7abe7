package services

// Services defined in this package:
// - ProvisioningService: Orchestrates the staff provisioning saga
// - IdentityResolver: Finds or creates authentication identities by email
// - ProfileSynchronizer: Upserts role/school membership profiles
// - RegistrationAllocator: Allocates unique staff registration numbers
// - AuthService: Handles login and token refresh
// - SchoolService: Handles school settings
