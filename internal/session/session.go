// Package session owns one conversation: the current profile, the message
// log, and the operations that mutate them.
package session

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/theirongolddev/fincoach/internal/advisor"
	"github.com/theirongolddev/fincoach/internal/budget"
	"github.com/theirongolddev/fincoach/internal/model"
)

// Journal persists session state as it changes. A nil Journal keeps the
// session in memory only.
type Journal interface {
	SaveProfile(sessionID string, p *model.Profile) error
	AppendEntry(sessionID string, e model.Entry) error
	ClearHistory(sessionID string) error
}

// Options configures a new Session.
type Options struct {
	// ID reuses an existing session ID. Empty generates a new one.
	ID string
	// Profile and History restore a previously saved session.
	Profile *model.Profile
	History []model.Entry

	Journal Journal
	Now     func() time.Time
}

// Session is a single user's conversation with the advisor.
type Session struct {
	ID      string
	Profile *model.Profile
	History []model.Entry

	advisor *advisor.Advisor
	journal Journal
	now     func() time.Time
}

// NewID returns a fresh session identifier.
func NewID() string {
	return "sess-" + uuid.NewString()
}

// New creates a session. A session restored without history is seeded with
// the welcome messages.
func New(adv *advisor.Advisor, opts Options) (*Session, error) {
	s := &Session{
		ID:      opts.ID,
		Profile: opts.Profile,
		History: append([]model.Entry(nil), opts.History...),
		advisor: adv,
		journal: opts.Journal,
		now:     opts.Now,
	}
	if s.ID == "" {
		s.ID = NewID()
	}
	if s.now == nil {
		s.now = time.Now
	}

	if len(s.History) == 0 {
		if err := s.seed(); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Session) seed() error {
	if _, err := s.append(model.RoleAssistant, advisor.WelcomeMessage); err != nil {
		return err
	}
	if s.Profile != nil {
		if _, err := s.append(model.RoleAssistant, advisor.PersonalizedWelcome(s.Profile)); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) append(role model.Role, content string) (model.Entry, error) {
	e := model.Entry{
		ID:        "msg-" + uuid.NewString(),
		Role:      role,
		Content:   content,
		Timestamp: s.now(),
	}
	if s.journal != nil {
		if err := s.journal.AppendEntry(s.ID, e); err != nil {
			return model.Entry{}, fmt.Errorf("recording message: %w", err)
		}
	}
	s.History = append(s.History, e)
	return e, nil
}

// SubmitProfile validates the input, classifies the user and derives their
// budget, then replaces the current profile and greets them. On a
// validation error the session is unchanged.
func (s *Session) SubmitProfile(in ProfileInput) (*model.Profile, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	seg := budget.ClassifySegment(in.Occupation, in.Age, in.Income)
	p := &model.Profile{
		Name:       in.Name,
		Age:        in.Age,
		Occupation: in.Occupation,
		Income:     in.Income,
		Experience: in.Experience,
		Goals:      in.Goals,
		Segment:    seg,
		Budget:     budget.AllocateBudget(seg, in.Income),
		CreatedAt:  s.now(),
	}

	if s.journal != nil {
		if err := s.journal.SaveProfile(s.ID, p); err != nil {
			return nil, fmt.Errorf("saving profile: %w", err)
		}
	}
	s.Profile = p

	if _, err := s.append(model.RoleAssistant, advisor.PersonalizedWelcome(p)); err != nil {
		return nil, err
	}
	return p, nil
}

// Record appends the user's message. It returns nil for blank input.
func (s *Session) Record(text string) (*model.Entry, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	e, err := s.append(model.RoleUser, text)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Reply computes and appends the assistant's answer to text.
func (s *Session) Reply(text string) (*model.Entry, error) {
	reply := s.advisor.SelectAdvice(strings.TrimSpace(text), s.Profile)
	e, err := s.append(model.RoleAssistant, reply)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Send records the user's message and returns the assistant's reply. Blank
// input is ignored and returns nil.
func (s *Session) Send(text string) (*model.Entry, error) {
	in, err := s.Record(text)
	if err != nil || in == nil {
		return nil, err
	}
	return s.Reply(in.Content)
}

// QuickAction sends a canned prompt by name.
func (s *Session) QuickAction(name string) (*model.Entry, error) {
	qa, ok := advisor.LookupQuickAction(name)
	if !ok {
		return nil, fmt.Errorf("unknown quick action %q", name)
	}
	return s.Send(qa.Prompt)
}

// Reset clears the conversation and re-seeds the welcome messages. The
// profile is kept.
func (s *Session) Reset() error {
	if s.journal != nil {
		if err := s.journal.ClearHistory(s.ID); err != nil {
			return fmt.Errorf("clearing history: %w", err)
		}
	}
	s.History = nil
	return s.seed()
}
