package domain

// SyllableSource identifies which tier produced a syllabification.
type SyllableSource string

const (
	SyllableSourceOverride SyllableSource = "OVERRIDE"
	SyllableSourceCurated  SyllableSource = "CURATED"
	SyllableSourceWordList SyllableSource = "WORDLIST"
	SyllableSourceRules    SyllableSource = "RULES"
)

func (s SyllableSource) String() string { return string(s) }

func (s SyllableSource) IsValid() bool {
	switch s {
	case SyllableSourceOverride, SyllableSourceCurated, SyllableSourceWordList, SyllableSourceRules:
		return true
	}
	return false
}

// EntityType identifies the kind of domain entity (used in audit logs).
type EntityType string

const (
	EntityTypeOverride EntityType = "OVERRIDE"
	EntityTypeWordList EntityType = "WORD_LIST"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeOverride, EntityTypeWordList:
		return true
	}
	return false
}

// AuditAction represents the kind of mutation recorded in the audit log.
type AuditAction string

const (
	AuditActionCreate AuditAction = "CREATE"
	AuditActionUpdate AuditAction = "UPDATE"
	AuditActionDelete AuditAction = "DELETE"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionUpdate, AuditActionDelete:
		return true
	}
	return false
}

// UserRole represents the authorization level carried in an access token.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleAdmin:
		return true
	}
	return false
}

// IsAdmin returns true if the role grants administrative access.
func (r UserRole) IsAdmin() bool { return r == UserRoleAdmin }
