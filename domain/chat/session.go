package chat

// Session is the authenticated identity driving authorship and chat visibility.
type Session struct {
	UserID    string
	AvatarURL string
	Token     string
}

// Profile is the user card shown when an avatar is selected.
type Profile struct {
	UserID    string
	AvatarURL string
}

// ProfileOf builds the profile card of a message author.
func ProfileOf(m Message) Profile {
	return Profile{UserID: m.AuthorID, AvatarURL: m.Avatar()}
}
