package prompt

import (
	"context"
	"fmt"
)

// Answer is one scripted reply. Exactly one field is read, depending on the
// prompt that consumes it: Choice for Select, Text for Input, Yes for Confirm.
type Answer struct {
	Choice string
	Text   string
	Yes    bool
}

// Scripted replays canned answers in order and records every Info message.
// Running out of answers behaves like the user pressing Ctrl+C.
type Scripted struct {
	Answers []Answer
	Infos   []string
}

var _ Driver = (*Scripted)(nil)

func (s *Scripted) next(ctx context.Context) (Answer, error) {
	if err := ctx.Err(); err != nil {
		return Answer{}, err
	}
	if len(s.Answers) == 0 {
		return Answer{}, ErrAborted
	}
	a := s.Answers[0]
	s.Answers = s.Answers[1:]
	return a, nil
}

func (s *Scripted) Input(ctx context.Context, cfg InputConfig) (string, error) {
	a, err := s.next(ctx)
	if err != nil {
		return "", err
	}
	if a.Text == "" {
		a.Text = cfg.Default
	}
	if cfg.Validator != nil {
		if err := cfg.Validator(a.Text); err != nil {
			return "", err
		}
	}
	return a.Text, nil
}

func (s *Scripted) Confirm(ctx context.Context, _ ConfirmConfig) (bool, error) {
	a, err := s.next(ctx)
	if err != nil {
		return false, err
	}
	return a.Yes, nil
}

func (s *Scripted) Select(ctx context.Context, cfg SelectConfig) (int, error) {
	if len(cfg.Options) == 0 {
		return 0, ErrNoOptions
	}
	a, err := s.next(ctx)
	if err != nil {
		return 0, err
	}
	idx := IndexOf(cfg.Options, a.Choice)
	if idx < 0 {
		return 0, fmt.Errorf("prompt: %q is not one of %q", a.Choice, cfg.Options)
	}
	return idx, nil
}

func (s *Scripted) Info(ctx context.Context, msg string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.Infos = append(s.Infos, msg)
	return nil
}
