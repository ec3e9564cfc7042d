package scrawl

import "time"

// Notice lifetimes.
const (
	NoticeDuration        = 2500 * time.Millisecond
	WarningNoticeDuration = 5 * time.Second
)

// NoticeLevel tells a front-end how to style a notice.
type NoticeLevel uint8

// Notice levels.
const (
	NoticeInfo NoticeLevel = iota
	NoticeWarning
)

// Notice is a short message that dismisses itself, such as the path of a
// saved image or an export failure.
type Notice struct {
	Level   NoticeLevel
	Message string
	Expires time.Time
}

// Notice returns the current notice, if one is posted and not expired.
func (o *Overlay) Notice() (Notice, bool) {
	if o.notice == nil {
		return Notice{}, false
	}
	if !o.now().Before(o.notice.Expires) {
		o.notice = nil
		return Notice{}, false
	}
	return *o.notice, true
}

func (o *Overlay) postNotice(level NoticeLevel, msg string) {
	d := NoticeDuration
	if level == NoticeWarning {
		d = WarningNoticeDuration
	}
	o.notice = &Notice{Level: level, Message: msg, Expires: o.now().Add(d)}
}
