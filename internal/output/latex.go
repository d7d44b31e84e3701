// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"strings"

	"github.com/nmlctl/nmlctl/internal/namelist"
)

// latexImportHeader introduces the table-only latex output, which is meant to
// be imported into a document that defines the commands listed here.
const latexImportHeader = `
% Latex tabulation of Fortran namelist, auto-generated by nmlctl <https://github.com/nmlctl/nmlctl>
%
% Include this file in a latex document using \import{path/to/this/file}.
% The importing document requires
% \usepackage{ltablex, array, sistyle}
% and possibly (depending on definitions below)
% \usepackage{hyperref, color}
% and also needs to define 'nmldiffer', 'nmllink' and 'ignored' commands, e.g.
% \newcommand{\nmldiffer}[1]{#1} % no special display of differing variables
% \newcommand{\nmldiffer}[1]{\textbf{#1}} % bold display of differing variables
% \definecolor{hilite}{cmyk}{0, 0, 0.9, 0}\newcommand{\nmldiffer}[1]{\colorbox{hilite}{#1}}\setlength{\fboxsep}{0pt} % colour highlight of differing variables (requires color package)
% \newcommand{\nmllink}[2]{#1} % don't link variables
% \newcommand{\nmllink}[2]{\href{https://github.com/mom-ocean/MOM5/search?q=#2}{#1}} % link variables to documentation (requires hyperref package)
% \newcommand{\ignored}[1]{#1} % no special display of ignored variables
% \definecolor{ignore}{gray}{0.7}\newcommand{\ignored}[1]{\textcolor{ignore}{#1}} % gray display of ignored variables (but only in groups where masterswitch key is present and false, so may not work well for differences; requires color package)
% and also define the length 'nmllen' that sets the column width, e.g.
% \newlength{\nmllen}\setlength{\nmllen}{12ex}

`

// latexDocumentHeader opens the self-contained latex-complete output, up to
// where the heading and the nmllink definition are appended.
const latexDocumentHeader = `% generated by https://github.com/nmlctl/nmlctl
\documentclass[10pt]{article}
\usepackage[a4paper, truedimen, top=2cm,bottom=2cm,left=2cm,right=2cm]{geometry}

\usepackage{PTSansNarrow} % narrow sans serif font for urls
\usepackage[scaled=.9]{inconsolata} % for texttt
\renewcommand{\familydefault}{\sfdefault}

\usepackage[table,dvipsnames]{xcolor}    % loads also colortbl
\definecolor{lightblue}{rgb}{0.93,0.95,1.0}  % for table rows
\rowcolors{1}{lightblue}{white}
\definecolor{link}{rgb}{0,0,1}
\usepackage[colorlinks, linkcolor={link},citecolor={link},urlcolor={link},
 breaklinks, bookmarks, bookmarksnumbered]{hyperref}
\usepackage{url}
\usepackage{breakurl}
\urlstyle{sf}

\usepackage{ltablex}\keepXColumns
\usepackage{array, sistyle}

\usepackage[strings]{underscore} % allows hyphenation at underscores
\usepackage{datetime2}\DTMsetdatestyle{iso}

\usepackage{makeidx}
\makeindex

\usepackage{fancyhdr}
\pagestyle{fancy}
\renewcommand{\headrulewidth}{0pt}
\lfoot{{\footnotesize \textsl{Fortran namelist table generated by \url{https://github.com/nmlctl/nmlctl}}}}
\rfoot{\textsl{\today\ \DTMcurrenttime\ \DTMcurrentzone}}

\begin{document}

\definecolor{ignore}{gray}{0.7}\newcommand{\ignored}[1]{\textcolor{ignore}{#1}} % gray display of ignored variables (but only in groups where masterswitch key is present and false, so may not work well for differences; requires color package)
\newlength{\nmllen}\setlength{\nmllen}{12ex}

`

const latexDocumentFooter = `
\clearpage
\phantomsection % fix hyperrefs to index
\addcontentsline{toc}{part}{\indexname}
\printindex
\end{document}
`

// renderLatex writes a ltablex tabulation with a repeated running header, a
// row per superset variable and a column per file. format distinguishes the
// importable table from the complete document.
func renderLatex(ds *namelist.DocumentSet, ss, dss *namelist.Document, format string, opts Options) string {
	if ss.Len() == 0 {
		return ""
	}

	var sb strings.Builder
	switch format {
	case "latex":
		sb.WriteString(latexImportHeader)
	case "latex-complete":
		sb.WriteString(latexDocumentHeader)
		sb.WriteString(opts.Heading)
		if opts.URL == "" {
			sb.WriteString(`\newcommand{\nmllink}[2]{#1\index{#1}}`)
		} else {
			sb.WriteString("Variables are weblinks to source code searches.\n")
			sb.WriteString(`\newcommand{\nmllink}[2]{\href{` + opts.URL + `#2}{#1}\index{#1}}`)
		}
		sb.WriteString("\n")
	}

	sources := ds.Sources()
	sb.WriteString("\\newcolumntype{R}{>{\\raggedleft\\arraybackslash}b{\\nmllen}}\n")
	sb.WriteString("\\begin{tabularx}{\\linewidth}{X" + strings.Repeat("R", len(sources)) + "}\n")

	writeLatexTableHead(&sb, sources, "Group", "\\endfirsthead")
	writeLatexTableHead(&sb, sources, "Group (continued)", "\\endhead")

	for _, group := range ss.SortedNames() {
		sgroup, _ := ss.Get(group)
		wroteRow := false
		for _, vname := range sgroup.SortedNames() {
			if opts.Hide.Has(group, vname) {
				continue
			}

			gr := ""
			if !wroteRow {
				gr = "\\&\\nmllink{" + latexEscape(group) + "}{" + group + "}"
				wroteRow = true
			}
			link := "\\nmllink{" + latexEscape(vname) + "}{" + vname + "}"
			if documentHas(dss, group, vname) {
				link = "\\nmldiffer{" + link + "}"
			}
			sb.WriteString(gr + " \\hfill " + link)

			for _, fn := range sources {
				sb.WriteString("\t & \t")
				doc, _ := ds.Get(fn)
				g, ok := doc.Get(group)
				if !ok {
					continue
				}
				val, ok := g.Get(vname)
				if !ok {
					continue
				}
				cell := latexRepr(val)
				if ms, ok := g.Get(opts.MasterSwitch); ok &&
					vname != opts.MasterSwitch && ms.Equal(namelist.Bool(false)) {
					cell = "\\ignored{" + cell + "}"
				}
				sb.WriteString(cell)
			}
			sb.WriteString(" \\\\\n")
		}
		if wroteRow {
			sb.WriteString("\\hline\n")
		}
	}
	sb.WriteString("\\end{tabularx}\n")

	if format == "latex-complete" {
		sb.WriteString(latexDocumentFooter)
	}
	return sb.String()
}

func writeLatexTableHead(sb *strings.Builder, sources []string, label, terminator string) {
	sb.WriteString("\\hline\n\\hiderowcolors\n")
	sb.WriteString("\\textbf{" + label + "\\quad\\hfill Variable}")
	for _, fn := range sources {
		sb.WriteString("\t & \t\\textbf{" + latexEscape(fn) + "}")
	}
	sb.WriteString(" \\\\\n\\showrowcolors\n\\hline" + terminator + "\n")
}

// latexEscape escapes the characters that commonly occur in file paths and
// Fortran names.
func latexEscape(s string) string {
	s = strings.ReplaceAll(s, "_", "\\_")
	s = strings.ReplaceAll(s, "/", "\\slash ")
	return strings.ReplaceAll(s, "%", "\\%")
}

// latexRepr renders a value for a table cell. Reals go through \num* with
// zero-padded exponents compacted; strings are escaped inside their quotes.
func latexRepr(v namelist.Value) string {
	switch x := v.(type) {
	case namelist.String:
		return "'" + latexEscape(string(x)) + "'"
	case namelist.Float:
		s := x.String()
		s = strings.ReplaceAll(s, "e+0", "e+")
		s = strings.ReplaceAll(s, "e-0", "e-")
		return "\\num*{" + s + "}{}"
	case namelist.List:
		parts := make([]string, len(x))
		for i := range x {
			parts[i] = latexRepr(x[i])
		}
		return strings.Join(parts, ", ")
	default:
		return v.String()
	}
}
