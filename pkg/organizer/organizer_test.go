package organizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func normalConfig() Config {
	cfg := DefaultConfig()
	cfg.Style = StyleNormal
	cfg.GroupBySourceClass = false
	return cfg
}

func TestOrganizer_Organize_example(t *testing.T) {
	req := require.New(t)
	text := "import { Header } from './components/header';\n" +
		"import Box from '@mui/material/Box';\n" +
		"import { Layout } from './components/layout';"

	edit := Organize(text, normalConfig())

	req.NotNil(edit)
	req.Equal(0, edit.StartLine)
	req.Equal(0, edit.StartCol)
	req.Equal(2, edit.EndLine)
	req.Equal(len("import { Layout } from './components/layout';"), edit.EndCol)
	req.Equal("import { Header } from './components/header';\n"+
		"import { Layout } from './components/layout';\n"+
		"import Box from '@mui/material/Box';", edit.Text)
}

func TestOrganizer_Organize_noImports(t *testing.T) {
	req := require.New(t)
	req.Nil(Organize("export const a = 1;\n", DefaultConfig()))
	req.Nil(Organize("", DefaultConfig()))

	out, changed := Format("const a = 1;\n", DefaultConfig())
	req.False(changed)
	req.Equal("const a = 1;\n", out)
}

func TestOrganizer_Format(t *testing.T) {
	tests := []struct {
		name   string
		config func() Config
		in     string
		want   string
	}{
		{
			name:   "normal sort counts runes",
			config: normalConfig,
			in:     "import { ab } from 'b';\nimport { 中 } from 'a';\n",
			want:   "import { 中 } from 'a';\nimport { ab } from 'b';\n",
		},
		{
			name:   "tab in specifier keeps from aligned",
			config: DefaultConfig,
			in:     "import {\tA} from 'a';\nimport { BB } from 'b';\n",
			want:   "import {\tA}   from 'a';\nimport { BB } from 'b';\n",
		},
		{
			name: "barrel split",
			config: func() Config {
				cfg := normalConfig()
				cfg.OptimizeBarrelImports = true
				return cfg
			},
			in: "import { Button, TextField } from '@mui/material';\n",
			want: "import Button from '@mui/material/Button';\n" +
				"import TextField from '@mui/material/TextField';\n",
		},
		{
			name: "barrel alias exemption",
			config: func() Config {
				cfg := normalConfig()
				cfg.OptimizeBarrelImports = true
				return cfg
			},
			in:   "import { DataGrid as Grid } from '@mui/x-data-grid';\n",
			want: "import { DataGrid as Grid } from '@mui/x-data-grid';\n",
		},
		{
			name: "unused imports removed",
			config: func() Config {
				cfg := normalConfig()
				cfg.RemoveUnused = true
				return cfg
			},
			in: "import { Header } from './h';\nimport Box from './b';\n\n" +
				"export const App = () => <Box />;\n",
			want: "import Box from './b';\n\nexport const App = () => <Box />;\n",
		},
		{
			name:   "precedence of buckets",
			config: normalConfig,
			in: "import Default from 'd';\n" +
				"import './styles.css';\n" +
				"import Mixed, { m } from 'm';\n" +
				"import { named } from 'n';\n" +
				"import * as NS from 'ns';\n" +
				"import 'fix-ts-path';\n",
			want: "import 'fix-ts-path';\n" +
				"import * as NS from 'ns';\n" +
				"import { named } from 'n';\n" +
				"import Mixed, { m } from 'm';\n" +
				"import Default from 'd';\n" +
				"import './styles.css';\n",
		},
		{
			name:   "aligned with groups",
			config: DefaultConfig,
			in: "import { a } from './rel';\n" +
				"import React from 'react';\n" +
				"import { b } from '@/alias';\n" +
				"\n" +
				"a(b, React);\n",
			want: "import React from 'react';\n" +
				"\n" +
				"import { b } from '@/alias';\n" +
				"\n" +
				"import { a } from './rel';\n" +
				"\n" +
				"a(b, React);\n",
		},
		{
			name:   "aligned padding",
			config: DefaultConfig,
			in: "import Box from '@mui/material/Box';\n" +
				"import { ThemeProvider } from '@mui/material/styles';\n",
			want: "import { ThemeProvider } from '@mui/material/styles';\n" +
				"import Box               from '@mui/material/Box';\n",
		},
		{
			name:   "pinned stays first when grouping",
			config: DefaultConfig,
			in: "import { x } from './x';\n" +
				"import 'fix-ts-path/register';\n" +
				"import React from 'react';\n",
			want: "import 'fix-ts-path/register';\n" +
				"import React from 'react';\n" +
				"\n" +
				"import { x } from './x';\n",
		},
		{
			name:   "comments and blanks inside the block are dropped",
			config: normalConfig,
			in: "// header\n" +
				"import B from 'b';\n" +
				"\n" +
				"// local\n" +
				"import { A } from './a';\n" +
				"\n" +
				"run();\n",
			want: "// header\n" +
				"import { A } from './a';\n" +
				"import B from 'b';\n" +
				"\n" +
				"run();\n",
		},
		{
			name:   "crlf line endings are kept",
			config: normalConfig,
			in:     "import B from 'b';\r\nimport { A } from 'a';\r\n\r\nrun();\r\n",
			want:   "import { A } from 'a';\r\nimport B from 'b';\r\n\r\nrun();\r\n",
		},
		{
			name:   "quote style and specifier text are kept",
			config: normalConfig,
			in:     "import {A,B} from \"./ab\"\nimport * as   fs from \"fs\"\n",
			want:   "import * as   fs from \"fs\";\nimport {A,B} from \"./ab\";\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			got, _ := Format(tt.in, tt.config())
			req.Equal(tt.want, got)
		})
	}
}

func sampleDocument() string {
	return strings.Join([]string{
		"'use client';",
		"",
		"import { Button, TextField } from '@mui/material';",
		"import Box from '@mui/material/Box';",
		"import * as React from 'react';",
		"import { useQuery } from '@tanstack/react-query';",
		"import { Header } from './components/header';",
		"import { Layout, Sidebar as Side } from './components/layout';",
		"import { api } from '@/services/api';",
		"import PopupState, { bindMenu } from 'material-ui-popup-state';",
		"import 'fix-ts-path';",
		"import './styles.css';",
		"import theme from '~/theme';",
		"import { DataGrid as Grid } from '@mui/x-data-grid';",
		"",
		"export function Page() {",
		"  const q = useQuery(api.list);",
		"  return <Layout><Box><Button /><Grid />{PopupState}</Box></Layout>;",
		"}",
		"",
	}, "\n")
}

func allConfigs() map[string]Config {
	configs := map[string]Config{}
	for _, style := range []FormatStyle{StyleNormal, StyleAligned} {
		for _, group := range []bool{false, true} {
			for _, barrels := range []bool{false, true} {
				for _, unused := range []bool{false, true} {
					cfg := DefaultConfig()
					cfg.Style = style
					cfg.GroupBySourceClass = group
					cfg.OptimizeBarrelImports = barrels
					cfg.RemoveUnused = unused
					name := string(style)
					if group {
						name += "+group"
					}
					if barrels {
						name += "+barrels"
					}
					if unused {
						name += "+unused"
					}
					configs[name] = cfg
				}
			}
		}
	}
	return configs
}

func TestOrganizer_Organize_idempotent(t *testing.T) {
	for name, cfg := range allConfigs() {
		t.Run(name, func(t *testing.T) {
			req := require.New(t)
			once, _ := Format(sampleDocument(), cfg)
			twice, changed := Format(once, cfg)
			req.False(changed, "second pass changed:\n%s", twice)
			req.Equal(once, twice)
		})
	}
}

// organizedRecords re-parses the organized block of text
func organizedRecords(t *testing.T, text string, cfg Config) []Record {
	t.Helper()
	b, ok := extractBlock(strings.Split(text, "\n"), cfg.PinnedMarker)
	require.True(t, ok)
	return b.records
}

func TestOrganizer_Organize_bucketPrecedence(t *testing.T) {
	for name, cfg := range allConfigs() {
		if cfg.GroupBySourceClass {
			continue
		}
		t.Run(name, func(t *testing.T) {
			req := require.New(t)
			out, _ := Format(sampleDocument(), cfg)
			records := organizedRecords(t, out, cfg)
			for i := 1; i < len(records); i++ {
				req.LessOrEqual(bucketOf(records[i-1]), bucketOf(records[i]), "%q before %q", records[i-1].Raw, records[i].Raw)
			}
		})
	}
}

func TestOrganizer_Organize_sortKeys(t *testing.T) {
	for name, cfg := range allConfigs() {
		if cfg.GroupBySourceClass {
			continue
		}
		t.Run(name, func(t *testing.T) {
			req := require.New(t)
			out, _ := Format(sampleDocument(), cfg)
			records := organizedRecords(t, out, cfg)
			for i := 1; i < len(records); i++ {
				prev, cur := records[i-1], records[i]
				if bucketOf(prev) != bucketOf(cur) {
					continue
				}
				if cfg.Style == StyleAligned {
					req.LessOrEqual(prev.Path, cur.Path)
				} else {
					req.LessOrEqual(length(prev.Specifier), length(cur.Specifier))
				}
			}
		})
	}
}

func TestOrganizer_Organize_alignment(t *testing.T) {
	for name, cfg := range allConfigs() {
		if cfg.Style != StyleAligned {
			continue
		}
		t.Run(name, func(t *testing.T) {
			req := require.New(t)
			edit := Organize(sampleDocument(), cfg)
			req.NotNil(edit)

			column := -1
			for _, line := range strings.Split(edit.Text, "\n") {
				i := strings.LastIndex(line, " from ")
				if line == "" || i < 0 {
					continue
				}
				if column == -1 {
					column = i
				}
				req.Equal(column, i, "misaligned line %q", line)
			}
			req.NotEqual(-1, column)
		})
	}
}

func TestOrganizer_Organize_groupSeparators(t *testing.T) {
	req := require.New(t)
	edit := Organize(sampleDocument(), DefaultConfig())
	req.NotNil(edit)

	lines := strings.Split(edit.Text, "\n")
	req.NotEmpty(lines[0])
	req.NotEmpty(lines[len(lines)-1])

	blanks := 0
	for _, line := range lines {
		if line == "" {
			blanks++
		}
	}
	req.Equal(2, blanks)
	req.Equal("import 'fix-ts-path';", lines[0])
}

func TestOrganizer_Organize_allRemoved(t *testing.T) {
	req := require.New(t)
	cfg := normalConfig()
	cfg.RemoveUnused = true

	out, changed := Format("import A from 'a';\nimport { B } from 'b';\n\nrun();\n", cfg)
	req.True(changed)
	req.Equal("\n\nrun();\n", out)
}
