package identity

// The two session channels (client JWT cookie, barber JSON cookie) resolve
// into one tagged identity so authorization checks never have to know which
// cookie the caller arrived with.

type Kind string

const (
	KindAnonymous Kind = "anonymous"
	KindUser      Kind = "user"
	KindBarber    Kind = "barber"
)

// User is the minimal payload carried by the session token. It is hydrated
// from the token itself, without a database round trip.
type User struct {
	ID     uint   `json:"id"`
	OpenID string `json:"open_id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
}

// Barber mirrors the barber_session cookie body.
type Barber struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type Identity struct {
	Kind   Kind
	User   *User
	Barber *Barber
}

func Anonymous() Identity {
	return Identity{Kind: KindAnonymous}
}

func ForUser(u User) Identity {
	return Identity{Kind: KindUser, User: &u}
}

func ForBarber(b Barber) Identity {
	return Identity{Kind: KindBarber, Barber: &b}
}

func (i Identity) IsUser() bool   { return i.Kind == KindUser && i.User != nil }
func (i Identity) IsBarber() bool { return i.Kind == KindBarber && i.Barber != nil }
