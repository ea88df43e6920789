package tui

import (
	"github.com/MKhiriev/go-job-board/models"
	tea "github.com/charmbracelet/bubbletea"
)

// Page names of the router.
const (
	pageMenu              = "menu"
	pageLogin             = "login"
	pageGoogle            = "google"
	pageRegisterCandidate = "register-candidate"
	pageRegisterRecruiter = "register-recruiter"
	pageSession           = "session"
	pageProfile           = "profile"
)

// NavigateTo switches the active page. Payload, when set, is delivered to
// the new page as its first message.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// sessionStateMsg carries every change of the client session.
type sessionStateMsg struct {
	state models.ClientSessionState
}

// forcedLogoutMsg is a logout the user did not ask for.
type forcedLogoutMsg struct {
	reason string
}

// loginNotice is shown above the login form.
type loginNotice struct {
	text string
}

type menuNotice struct {
	text string
}

type sessionNotice struct {
	text string
}

// authDoneMsg ends a sign-in or registration request.
type authDoneMsg struct {
	err error
}

type profileDoneMsg struct {
	err error
}

type verifyDoneMsg struct {
	err error
}

type logoutDoneMsg struct {
	err error
}

type serverVersionMsg struct {
	version models.VersionResponse
	err     error
}

type copiedMsg struct {
	err error
}

// clearStatusMsg hides the status line set with the same seq.
type clearStatusMsg struct {
	seq int
}
