package user

import (
	"errors"
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"proteseflow/internal/core/domain/model/kernel"
	"proteseflow/internal/pkg/errs"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	maxUsernameLength = 150
	maxEmailLength    = 254
	maxPhoneLength    = 20
	maxLicenseLength  = 30
)

var (
	// ErrUserIsNotConstructed is returned when a User was not created through one of
	// the constructors in this package.
	ErrUserIsNotConstructed = errors.New("User must be created via NewSelfRegistered, NewByManager, NewSuperuser or RestoreUser")

	// ErrUserAlreadyIdentified is returned when the store tries to assign a second ID.
	ErrUserAlreadyIdentified = errors.New("user already has an identifier")

	usernamePattern = regexp.MustCompile(`^[\p{L}\p{N}@.+\-_]+$`)
)

// User is the aggregate root for an account.
//
// Invariants:
//   - username is non-empty, at most 150 characters of letters, digits and @.+-_
//   - email, when present, is a single address
//   - role is one of Dentist, Manager, CadTechnician
//   - state is Active, Archived or Deleted; IsActive and IsArchived are derived from it
type User struct {
	id           kernel.ID
	username     string
	email        string
	phone        string
	passwordHash string
	role         Role
	superuser    bool
	state        AccountState
	license      string
	confirmed    bool
	joinedAt     time.Time
	version      int

	isConstructed bool
}

// Profile groups the contact fields a user can change on their own account.
type Profile struct {
	Username string
	Email    string
	Phone    string
}

// Registration groups the fields captured when an account is created.
type Registration struct {
	Profile
	License      string
	PasswordHash string
}

// NewSelfRegistered creates the account of a dentist who signed up on their own.
// The account is Active but unconfirmed until a manager approves it.
func NewSelfRegistered(reg Registration) (*User, error) {
	return newUser(reg, Dentist, false, false)
}

// NewByManager creates an account on behalf of a manager. Such accounts are confirmed
// immediately and may hold any role.
func NewByManager(reg Registration, role Role) (*User, error) {
	return newUser(reg, role, true, false)
}

// NewSuperuser creates the bootstrap administrator: a confirmed Manager with the
// superuser flag set.
func NewSuperuser(reg Registration) (*User, error) {
	return newUser(reg, Manager, true, true)
}

func newUser(reg Registration, role Role, confirmed, superuser bool) (*User, error) {
	u := &User{
		state:         Active,
		confirmed:     confirmed,
		superuser:     superuser,
		joinedAt:      time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		u.setProfile(reg.Profile),
		u.setLicense(reg.License),
		u.setPasswordHash(reg.PasswordHash),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// Snapshot carries the persisted state of a user for RestoreUser.
type Snapshot struct {
	ID           kernel.ID
	Username     string
	Email        string
	Phone        string
	PasswordHash string
	Role         Role
	Superuser    bool
	State        AccountState
	License      string
	Confirmed    bool
	JoinedAt     time.Time
	Version      int
}

// RestoreUser rebuilds a user loaded from the store, re-checking every invariant.
func RestoreUser(s Snapshot) (*User, error) {
	u := &User{
		superuser:     s.Superuser,
		confirmed:     s.Confirmed,
		joinedAt:      s.JoinedAt,
		version:       s.Version,
		isConstructed: true,
	}

	if err := errors.Join(
		s.ID.Validate(),
		u.setProfile(Profile{Username: s.Username, Email: s.Email, Phone: s.Phone}),
		u.setLicense(s.License),
		u.setPasswordHash(s.PasswordHash),
		u.setRole(s.Role),
		u.setState(s.State),
	); err != nil {
		return nil, err
	}

	u.id = s.ID
	return u, nil
}

// Validate ensures the User was created through a constructor.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// Identify records the identifier assigned by the store on first insert.
func (u *User) Identify(id kernel.ID) error {
	if !u.id.IsZero() {
		return ErrUserAlreadyIdentified
	}
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

// IsEqual compares two users by identifier.
func (u *User) IsEqual(other *User) bool {
	return u != nil && other != nil && !u.id.IsZero() && u.id.IsEqual(other.id)
}

func (u *User) ID() kernel.ID          { return u.id }
func (u *User) Username() string       { return u.username }
func (u *User) Email() string          { return u.email }
func (u *User) Phone() string          { return u.phone }
func (u *User) PasswordHash() string   { return u.passwordHash }
func (u *User) Role() Role             { return u.role }
func (u *User) IsSuperuser() bool      { return u.superuser }
func (u *User) State() AccountState    { return u.state }
func (u *User) License() string        { return u.license }
func (u *User) IsConfirmed() bool      { return u.confirmed }
func (u *User) JoinedAt() time.Time    { return u.joinedAt }
func (u *User) Version() int           { return u.version }
func (u *User) IsActive() bool         { return u.state == Active }
func (u *User) IsArchived() bool       { return u.state == Archived }
func (u *User) IsDeleted() bool        { return u.state == Deleted }
func (u *User) HasRole(role Role) bool { return u.role == role }

// Profile returns the self-editable contact fields.
func (u *User) Profile() Profile {
	return Profile{Username: u.username, Email: u.email, Phone: u.phone}
}

// MatchesUsername compares identifier with the username ignoring case, as lower() does.
func (u *User) MatchesUsername(identifier string) bool {
	return foldEqual(u.username, identifier)
}

// MatchesEmail compares identifier with the email ignoring case.
// Accounts without an email never match.
func (u *User) MatchesEmail(identifier string) bool {
	return u.email != "" && foldEqual(u.email, identifier)
}

// Approve confirms the registration. Approving a confirmed account is a no-op.
func (u *User) Approve() error {
	if u.IsDeleted() {
		return invalidTransition(u.state, u.state)
	}
	u.confirmed = true
	return nil
}

// Reject discards a registration that was never confirmed. The account is marked
// Deleted and must then be removed from the store.
func (u *User) Reject() error {
	if u.IsDeleted() {
		return invalidTransition(u.state, Deleted)
	}
	if u.confirmed {
		return errs.NewValueIsInvalidErrorWithCause(
			"registration",
			fmt.Errorf("account %s is already confirmed", u.username),
		)
	}
	u.state = Deleted
	return nil
}

// Archive moves the account to the trash and disables login.
func (u *User) Archive() error {
	next, err := u.state.Archive()
	if err != nil {
		return err
	}
	u.state = next
	return nil
}

// Restore brings an archived account back, keeping its confirmation state.
func (u *User) Restore() error {
	next, err := u.state.Restore()
	if err != nil {
		return err
	}
	u.state = next
	return nil
}

// Purge marks an archived account as Deleted so it can be removed permanently.
func (u *User) Purge() error {
	next, err := u.state.Purge()
	if err != nil {
		return err
	}
	u.state = next
	return nil
}

// UpdateProfile replaces username, email and phone. Role, license and confirmation
// are out of reach of self-service edits.
func (u *User) UpdateProfile(p Profile) error {
	if u.IsDeleted() {
		return invalidTransition(u.state, u.state)
	}
	return u.setProfile(p)
}

// Edit is the manager-side edit: contact fields, role and license.
func (u *User) Edit(p Profile, role Role, license string) error {
	if u.IsDeleted() {
		return invalidTransition(u.state, u.state)
	}

	candidate := *u
	if err := errors.Join(
		candidate.setProfile(p),
		candidate.setRole(role),
		candidate.setLicense(license),
	); err != nil {
		return err
	}

	*u = candidate
	return nil
}

// ChangePasswordHash replaces the stored hash.
func (u *User) ChangePasswordHash(hash string) error {
	return u.setPasswordHash(hash)
}

func (u *User) setProfile(p Profile) error {
	username := strings.TrimSpace(p.Username)
	email := normalizeEmail(p.Email)
	phone := strings.TrimSpace(p.Phone)

	var problems []error
	switch {
	case username == "":
		problems = append(problems, errs.NewValueIsRequiredError("username"))
	case utf8.RuneCountInString(username) > maxUsernameLength:
		problems = append(problems, errs.NewValueIsOutOfRangeError("username", utf8.RuneCountInString(username), 1, maxUsernameLength))
	case !usernamePattern.MatchString(username):
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
			"username",
			errors.New("only letters, digits and @/./+/-/_ are allowed"),
		))
	}

	if email != "" {
		if len(email) > maxEmailLength {
			problems = append(problems, errs.NewValueIsOutOfRangeError("email", len(email), 0, maxEmailLength))
		} else if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not an address", email)))
		}
	}

	if utf8.RuneCountInString(phone) > maxPhoneLength {
		problems = append(problems, errs.NewValueIsOutOfRangeError("phone", utf8.RuneCountInString(phone), 0, maxPhoneLength))
	}

	if len(problems) > 0 {
		return errors.Join(problems...)
	}

	u.username = username
	u.email = email
	u.phone = phone
	return nil
}

func (u *User) setLicense(license string) error {
	license = strings.TrimSpace(license)
	if utf8.RuneCountInString(license) > maxLicenseLength {
		return errs.NewValueIsOutOfRangeError("license", utf8.RuneCountInString(license), 0, maxLicenseLength)
	}
	u.license = license
	return nil
}

func (u *User) setPasswordHash(hash string) error {
	if hash == "" {
		return errs.NewValueIsRequiredError("password")
	}
	u.passwordHash = hash
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}

func (u *User) setState(state AccountState) error {
	if err := state.Validate(); err != nil {
		return err
	}
	u.state = state
	return nil
}

// normalizeEmail trims the address and lowercases its domain part.
func normalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	return email[:at] + "@" + strings.ToLower(email[at+1:])
}

// foldEqual compares lowercased forms, the same comparison the users table applies
// through lower(). A Caser keeps state, so a fresh one is used per call.
func foldEqual(a, b string) bool {
	lower := cases.Lower(language.Und)
	return lower.String(strings.TrimSpace(a)) == lower.String(strings.TrimSpace(b))
}
