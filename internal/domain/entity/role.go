package entity

// Role is the closed set of staff roles in the clinic.
type Role string

const (
	RoleAdmin         Role = "Admin"
	RoleDoctor        Role = "Doctor"
	RolePharmacist    Role = "Pharmacist"
	RoleLabTechnician Role = "Lab Technician"
	RoleReceptionist  Role = "Receptionist"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleDoctor, RolePharmacist, RoleLabTechnician, RoleReceptionist:
		return true
	}
	return false
}

// IDPrefix returns the staff-id prefix conventionally used for the role.
func (r Role) IDPrefix() string {
	switch r {
	case RoleDoctor:
		return "DOCT"
	case RolePharmacist:
		return "PHARM"
	case RoleLabTechnician:
		return "LAB"
	case RoleReceptionist:
		return "RECEP"
	case RoleAdmin:
		return "ADMIN"
	default:
		return "USER"
	}
}
