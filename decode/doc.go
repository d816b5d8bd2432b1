// Package decode maps documents onto typed records through an explicit field table.
//
// Every target field is declared once with the document key it reads from and a typed
// extraction function; no reflection is involved in matching or assignment:
//
//	type User struct {
//		ID     int64
//		Name   string
//		Email  *string
//	}
//
//	dec, err := decode.New([]decode.Field[User]{
//		decode.Bind("id", decode.Int[int64](), func(u *User) *int64 { return &u.ID }),
//		decode.Bind("name", decode.String[string](), func(u *User) *string { return &u.Name }),
//		decode.Optional("email", decode.String[string](), func(u *User) **string { return &u.Email }),
//	})
//
// Keys are matched exactly first, then through aliases, then by normalized identifier
// ("UserID", "user_id" and "[user id]" all match "userid"). Each step runs over all
// fields before the next one, and a key taken by one field is not offered to another.
// Document keys no field asks for are ignored.
//
// Failures are *Error values carrying the field, the matched key and a Reason; they
// match ErrMissingField, ErrIncompatible or ErrShape with errors.Is.
package decode
