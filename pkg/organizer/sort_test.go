package organizer

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func specifiers(records []Record) []string {
	out := make([]string, 0, len(records))
	for _, rec := range records {
		out = append(out, rec.Specifier)
	}
	return out
}

func TestOrganizer_partition(t *testing.T) {
	records := mustParse(t,
		"import Typography from '@mui/material/Typography';",
		"import { useAllTranslationFolders } from 'app/apps/i18n/i18n-items.model';",
		"import Button from '@mui/material/Button';",
		"import { memo, useState } from 'react';",
		"import Paper from '@mui/material/Paper';",
		"import { useAgencyInvites } from '../models/agency-invite.model';",
		"import TextField from '@mui/material/TextField';",
	)

	t.Run("normal sorts by specifier length", func(t *testing.T) {
		req := require.New(t)
		got := partition(records, StyleNormal)
		req.Equal([]string{
			"{ memo, useState }",
			"{ useAgencyInvites }",
			"{ useAllTranslationFolders }",
			"Paper",
			"Button",
			"TextField",
			"Typography",
		}, specifiers(got))
	})

	t.Run("normal counts runes not columns", func(t *testing.T) {
		req := require.New(t)
		got := partition(mustParse(t,
			"import { ab } from 'b';",
			"import { 中 } from 'a';",
		), StyleNormal)
		req.Equal([]string{"{ 中 }", "{ ab }"}, specifiers(got))
	})

	t.Run("aligned sorts by module path", func(t *testing.T) {
		req := require.New(t)
		got := partition(records, StyleAligned)
		req.Equal([]string{
			"'../models/agency-invite.model'",
			"'app/apps/i18n/i18n-items.model'",
			"'react'",
			"'@mui/material/Button'",
			"'@mui/material/Paper'",
			"'@mui/material/TextField'",
			"'@mui/material/Typography'",
		}, paths(got))
	})

	t.Run("ties keep source order", func(t *testing.T) {
		req := require.New(t)
		got := partition(mustParse(t,
			"import { Layout } from './components/layout';",
			"import { Header } from './components/header';",
		), StyleNormal)
		req.Equal([]string{"'./components/layout'", "'./components/header'"}, paths(got))
	})

	t.Run("separators are dropped", func(t *testing.T) {
		req := require.New(t)
		got := partition(append(mustParse(t, "import A from 'a';"), separator()), StyleNormal)
		req.Len(got, 1)
	})
}

func TestOrganizer_groupByClass(t *testing.T) {
	aliases := DefaultPathAliases

	t.Run("all classes present", func(t *testing.T) {
		req := require.New(t)
		records := classify(mustParse(t,
			"import 'fix-ts-path';",
			"import { a } from './a';",
			"import { u } from '@/u';",
			"import { r } from 'r';",
			"import B from '../b';",
			"import S from 's';",
		), aliases)

		got := groupByClass(records)
		req.Equal([]string{"'fix-ts-path'", "'r'", "'s'", "", "'@/u'", "", "'./a'", "'../b'"}, paths(got))
	})

	t.Run("missing class gets no separator", func(t *testing.T) {
		req := require.New(t)
		records := classify(mustParse(t,
			"import { a } from './a';",
			"import { r } from 'r';",
		), aliases)

		got := groupByClass(records)
		req.Equal([]string{"'r'", "", "'./a'"}, paths(got))
	})

	t.Run("single class", func(t *testing.T) {
		req := require.New(t)
		records := classify(mustParse(t, "import { r } from 'r';", "import S from 's';"), aliases)
		req.Equal([]string{"'r'", "'s'"}, paths(groupByClass(records)))
	})
}

func TestOrganizer_render(t *testing.T) {
	records := []Record{
		{Raw: "import 'fix-ts-path';", Path: "'fix-ts-path'", Kind: KindSideEffect, Pinned: true},
		{Raw: "x", Specifier: "{ Header }", Path: "'./header'", Kind: KindNamed},
		separator(),
		{Raw: "x", Specifier: "Box", Path: "'./box'", Kind: KindDefault},
	}

	t.Run("normal", func(t *testing.T) {
		req := require.New(t)
		req.Equal([]string{
			"import 'fix-ts-path';",
			"import { Header } from './header';",
			"",
			"import Box from './box';",
		}, render(records, StyleNormal, false))
	})

	t.Run("aligned", func(t *testing.T) {
		req := require.New(t)
		req.Equal([]string{
			"import 'fix-ts-path';",
			"import { Header } from './header';",
			"",
			"import Box        from './box';",
		}, render(records, StyleAligned, false))
	})

	wide := []Record{
		{Raw: "x", Specifier: "{ 名前 }", Path: "'./n'", Kind: KindNamed},
		{Raw: "x", Specifier: "{ name }", Path: "'./m'", Kind: KindNamed},
	}

	t.Run("aligned pads by specifier length", func(t *testing.T) {
		req := require.New(t)
		req.Equal([]string{
			"import { 名前 }   from './n';",
			"import { name } from './m';",
		}, render(wide, StyleAligned, false))
	})

	t.Run("aligned pads by display width when asked", func(t *testing.T) {
		req := require.New(t)
		req.Equal([]string{
			"import { 名前 } from './n';",
			"import { name } from './m';",
		}, render(wide, StyleAligned, true))
	})

	tabbed := []Record{
		{Raw: "x", Specifier: "{\tA}", Path: "'a'", Kind: KindNamed},
		{Raw: "x", Specifier: "{ BB }", Path: "'b'", Kind: KindNamed},
	}
	for _, displayWidth := range []bool{false, true} {
		t.Run(fmt.Sprintf("tab counts as one column (display width %v)", displayWidth), func(t *testing.T) {
			req := require.New(t)
			req.Equal([]string{
				"import {\tA}   from 'a';",
				"import { BB } from 'b';",
			}, render(tabbed, StyleAligned, displayWidth))
		})
	}
}

func TestColumns(t *testing.T) {
	tests := []struct {
		in       string
		expected int
	}{
		{in: "{ name }", expected: 8},
		{in: "{ 名前 }", expected: 8},
		{in: "{\tA}", expected: 4},
		{in: "", expected: 0},
	}
	for _, tt := range tests {
		require.Equal(t, tt.expected, columns(tt.in), "columns(%q)", tt.in)
		require.LessOrEqual(t, length(tt.in), columns(tt.in))
	}
}
