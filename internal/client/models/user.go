// Package models defines the payloads exchanged with the CraftConnect backend.
//
// Response fields the backend may omit are pointers or nil slices; nothing
// here fills in defaults.
package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
)

// ErrInvalidUser is returned when a user record is not a JSON object.
var ErrInvalidUser = errors.New("user record is not a JSON object")

// User is the backend's user record. The session layer treats it as opaque:
// the raw JSON is kept verbatim so fields this client does not know about
// survive a persist/restore round trip. Only the identifier is interpreted.
type User struct {
	raw json.RawMessage
}

// NewUser validates raw as a JSON object and wraps it.
func NewUser(raw []byte) (User, error) {
	var u User
	if err := u.UnmarshalJSON(raw); err != nil {
		return User{}, err
	}
	if u.IsZero() {
		return User{}, ErrInvalidUser
	}
	return u, nil
}

// MustUser is NewUser for literals in tests and examples.
func MustUser(raw string) User {
	u, err := NewUser([]byte(raw))
	if err != nil {
		panic(err)
	}
	return u
}

// IsZero reports whether no record is held.
func (u User) IsZero() bool {
	return len(u.raw) == 0
}

// Raw returns the record as received.
func (u User) Raw() json.RawMessage {
	return u.raw
}

// ID returns "user_id", falling back to "id". Numeric identifiers are
// rendered in decimal. An empty string means the record carries no id.
func (u User) ID() string {
	if u.IsZero() {
		return ""
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(u.raw, &fields); err != nil {
		return ""
	}
	for _, key := range []string{"user_id", "id"} {
		v, ok := fields[key]
		if !ok {
			continue
		}
		var s string
		if err := json.Unmarshal(v, &s); err == nil {
			return s
		}
		var n json.Number
		if err := json.Unmarshal(v, &n); err == nil {
			return n.String()
		}
	}
	return ""
}

// Profile decodes the well-known profile fields.
func (u User) Profile() (UserProfile, error) {
	var p UserProfile
	if u.IsZero() {
		return p, ErrInvalidUser
	}
	err := json.Unmarshal(u.raw, &p)
	return p, err
}

func (u User) MarshalJSON() ([]byte, error) {
	if u.IsZero() {
		return []byte("null"), nil
	}
	return u.raw, nil
}

// UnmarshalJSON accepts a JSON object; null leaves u untouched.
func (u *User) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	if len(trimmed) == 0 || trimmed[0] != '{' || !json.Valid(trimmed) {
		return ErrInvalidUser
	}
	u.raw = append(json.RawMessage(nil), trimmed...)
	return nil
}

// Equal compares two records by their compacted JSON.
func (u User) Equal(other User) bool {
	if u.IsZero() || other.IsZero() {
		return u.IsZero() == other.IsZero()
	}
	var a, b bytes.Buffer
	if json.Compact(&a, u.raw) != nil || json.Compact(&b, other.raw) != nil {
		return false
	}
	return bytes.Equal(a.Bytes(), b.Bytes())
}

func (u User) String() string {
	if id := u.ID(); id != "" {
		return "user " + strconv.Quote(id)
	}
	return "user"
}

// UserProfile is the typed view of a user record.
type UserProfile struct {
	UserID    string  `json:"user_id"`
	Email     string  `json:"email"`
	Name      string  `json:"name"`
	Phone     *string `json:"phone,omitempty"`
	Location  *string `json:"location,omitempty"`
	Bio       *string `json:"bio,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
	CreatedAt string  `json:"created_at,omitempty"`
	UpdatedAt string  `json:"updated_at,omitempty"`
}

// ProfileUpdate is the body of PUT /users/{id}. Nil fields are left unchanged.
type ProfileUpdate struct {
	Name      *string `json:"name,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Location  *string `json:"location,omitempty"`
	Bio       *string `json:"bio,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}
