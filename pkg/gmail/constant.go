package gmail

const (
	userMe         = "me"
	labelUnread    = "UNREAD"
	defaultLimit   = 3
	inboxQuery     = "in:inbox"
	unreadQuery    = "is:unread"
	headerFrom     = "From"
	headerSubject  = "Subject"
	headerDate     = "Date"
	snippetMaxRune = 300
)
