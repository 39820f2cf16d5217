package domain

// User is the purchaser the server embeds in an order when it knows them.
type User struct {
	ID        int64
	Email     string
	FirstName string
	LastName  string
	Phone     string
}

// UserFromMap builds a User from a decoded JSON object.
func UserFromMap(m map[string]any) (User, error) {
	d := newDecoder("user", m)
	u := User{
		ID:        d.intField("id"),
		Email:     d.stringField("email"),
		FirstName: d.stringField("first_name"),
		LastName:  d.stringField("last_name"),
		Phone:     d.stringField("phone"),
	}
	return u, d.err()
}

func (u User) ToMap() map[string]any {
	return map[string]any{
		"id":         u.ID,
		"email":      u.Email,
		"first_name": u.FirstName,
		"last_name":  u.LastName,
		"phone":      u.Phone,
	}
}
