package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/goliatone/go-flux/internal/prompt"
	"github.com/goliatone/go-flux/pkg/dom"
)

const quitChoice = "quit"

// interactiveSelector lists the elements the session offers to the user.
const interactiveSelector = "button, input"

type session struct {
	doc    *dom.Document
	demo   *demo
	driver prompt.Driver
	out    io.Writer
}

// run prompts for an element and an action until the user quits or aborts.
func (s *session) run(ctx context.Context) error {
	for {
		elements, err := s.interactive()
		if err != nil {
			return err
		}

		options := make([]string, 0, len(elements)+1)
		for i, el := range elements {
			options = append(options, fmt.Sprintf("%d. %s", i+1, describe(el)))
		}
		options = append(options, quitChoice)

		idx, err := s.driver.Select(ctx, prompt.SelectConfig{
			Message: "Interact with",
			Options: options,
		})
		if errors.Is(err, prompt.ErrAborted) {
			return nil
		}
		if err != nil {
			return err
		}
		if idx < 0 || idx >= len(elements) {
			return nil
		}

		if err := s.act(ctx, idx, elements[idx]); err != nil {
			if errors.Is(err, prompt.ErrAborted) {
				return nil
			}
			return err
		}
		s.print()
	}
}

func (s *session) act(ctx context.Context, idx int, el *dom.Element) error {
	if el.TagName() == "button" || isCheckbox(el) {
		return s.doc.Click(el)
	}

	text, err := s.driver.Input(ctx, prompt.InputConfig{
		Message: "Type into " + describe(el),
		Default: el.Attr("value"),
	})
	if err != nil {
		return err
	}
	if err := s.doc.Input(el, text); err != nil {
		return err
	}

	submit, err := s.driver.Confirm(ctx, prompt.ConfirmConfig{Message: "Press Enter?", Default: true})
	if err != nil || !submit {
		return err
	}
	// The input handler may have re-rendered; press on the fresh node.
	elements, err := s.interactive()
	if err != nil {
		return err
	}
	if idx < len(elements) {
		el = elements[idx]
	}
	return s.doc.Press(el, "Enter")
}

func (s *session) interactive() ([]*dom.Element, error) {
	return s.demo.app.Container().QuerySelectorAll(interactiveSelector)
}

func (s *session) print() {
	fmt.Fprintln(s.out, s.demo.app.Container().InnerHTML())
	if s.demo.status != nil {
		fmt.Fprintln(s.out, "--", s.demo.status())
	}
}

func describe(el *dom.Element) string {
	switch {
	case el.TagName() == "button":
		return "button " + strings.TrimSpace(el.TextContent())
	case isCheckbox(el):
		label := ""
		if parent := el.Parent(); parent != nil {
			label = strings.TrimSpace(parent.TextContent())
		}
		state := "[ ]"
		if el.HasAttr("checked") {
			state = "[x]"
		}
		return "checkbox " + state + " " + label
	default:
		name := el.ID()
		if name == "" {
			name = el.Attr("type")
		}
		return fmt.Sprintf("input #%s (%q)", name, el.Attr("value"))
	}
}

func isCheckbox(el *dom.Element) bool {
	return el.TagName() == "input" && strings.EqualFold(el.Attr("type"), "checkbox")
}
