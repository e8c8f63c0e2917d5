package constants

// RoleUser is the role assigned to every new registration.
const RoleUser = "User"
