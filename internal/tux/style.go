// Copyright 2022 Jetpack Technologies Inc and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package tux

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type StyleSheet struct {
	Styles map[string]StyleRule
	Tokens map[string]string
}

type StyleRule struct {
	Bold               bool
	Italic             bool
	Underline          bool
	Faint              bool
	Foreground         string
	ForegroundInverted string
}

func Renderer(r *lipgloss.Renderer, styleRule StyleRule, tokens map[string]string) lipgloss.Style {
	style := r.NewStyle().
		Bold(styleRule.Bold).
		Italic(styleRule.Italic).
		Underline(styleRule.Underline).
		Faint(styleRule.Faint)
	if styleRule.Foreground != "" {
		style = style.Foreground(getColor(styleRule.Foreground, styleRule.ForegroundInverted, tokens))
	}
	return style
}

func getColor(token string, invertedToken string, tokens map[string]string) lipgloss.TerminalColor {
	color := resolveToken(token, tokens)
	invertedColor := resolveToken(invertedToken, tokens)

	if invertedColor == "" {
		return lipgloss.Color(color)
	}
	return lipgloss.AdaptiveColor{
		Dark:  color,
		Light: invertedColor,
	}
}

func resolveToken(token string, tokens map[string]string) string {
	if strings.HasPrefix(token, "$") {
		return tokens[token]
	}
	return token
}

func StyleFunc(r *lipgloss.Renderer, styleSheet StyleSheet) func(class string, text string) string {
	return func(class string, text string) string {
		styleRule, exists := styleSheet.Styles[class]
		// Return the text as is if the class is not found.
		if !exists {
			return text
		}
		return Renderer(r, styleRule, styleSheet.Tokens).Render(text)
	}
}
