package domain

import (
	"fmt"
	"strings"
)

// DefaultOutputDirName is the subdirectory of the source directory used when
// no output directory is given.
const DefaultOutputDirName = "ppw"

// Per-role file name suffixes, appended to the input's base name
const (
	SuffixWorkingCopy    = "_1.ppw.js"
	SuffixDepLogA        = "_1.dfs.txt"
	SuffixDepLogB        = "_2.dfs.txt"
	SuffixLogA           = "_1.log.txt"
	SuffixLogB           = "_2.log.txt"
	SuffixCompiledOutput = "-out.compiled.js"
)

// ArtifactSet holds every path derived from one (input, output directory) pair.
// Directory fields always end with a forward slash.
type ArtifactSet struct {
	SourceDir      string
	OutputDir      string
	BaseName       string
	CleanedInput   string
	WorkingCopy    string // lives in SourceDir so relative requires still resolve
	LogA           string
	LogB           string
	DepLogA        string
	DepLogB        string
	CompiledOutput string

	// DefaultedOutputDir is set when no output directory was supplied and
	// OutputDir fell back to SourceDir + "ppw/".
	DefaultedOutputDir bool
}

// ResolveArtifacts derives the ArtifactSet for inputPath. It performs no I/O:
// the same arguments always produce the same set.
func ResolveArtifacts(inputPath, outputDir string) ArtifactSet {
	cleaned := NormalizeSeparators(inputPath)
	segments := strings.Split(cleaned, "/")
	fileName := segments[len(segments)-1]

	baseName, _, _ := strings.Cut(fileName, ".js")
	sourceDir := joinDir(strings.HasPrefix(cleaned, "/"), segments[:len(segments)-1])

	set := ArtifactSet{
		SourceDir: sourceDir,
		BaseName:  baseName,
	}

	if outputDir == "" {
		set.OutputDir = sourceDir + DefaultOutputDirName + "/"
		set.DefaultedOutputDir = true
	} else {
		set.OutputDir = NormalizeDir(outputDir)
	}

	set.CleanedInput = sourceDir + fileName
	set.WorkingCopy = sourceDir + baseName + SuffixWorkingCopy
	set.DepLogA = set.OutputDir + baseName + SuffixDepLogA
	set.DepLogB = set.OutputDir + baseName + SuffixDepLogB
	set.LogA = set.OutputDir + baseName + SuffixLogA
	set.LogB = set.OutputDir + baseName + SuffixLogB
	set.CompiledOutput = set.OutputDir + baseName + SuffixCompiledOutput

	return set
}

// NormalizeSeparators converts Windows separators (including escaped double
// backslashes) to forward slashes.
func NormalizeSeparators(p string) string {
	p = strings.ReplaceAll(p, `\\`, `\`)
	return strings.ReplaceAll(p, `\`, "/")
}

// NormalizeDir normalizes a directory path: forward slashes, no empty
// segments, a trailing slash, and a leading slash kept for absolute paths.
func NormalizeDir(dir string) string {
	cleaned := NormalizeSeparators(dir)
	return joinDir(strings.HasPrefix(cleaned, "/"), strings.Split(cleaned, "/"))
}

func joinDir(absolute bool, segments []string) string {
	var sb strings.Builder
	if absolute {
		sb.WriteByte('/')
	}
	for _, s := range segments {
		if s == "" {
			continue
		}
		sb.WriteString(s)
		sb.WriteByte('/')
	}
	return sb.String()
}

// ArtifactRole names a single path of an ArtifactSet
type ArtifactRole string

const (
	RoleInput       ArtifactRole = "input"
	RoleWorkingCopy ArtifactRole = "copy"
	RoleCompiled    ArtifactRole = "compiled"
	RoleLogA        ArtifactRole = "log"
	RoleLogB        ArtifactRole = "log2"
	RoleDepLogA     ArtifactRole = "deplog"
	RoleDepLogB     ArtifactRole = "deplog2"
)

// Roles lists every role in display order.
var Roles = []ArtifactRole{
	RoleInput, RoleWorkingCopy, RoleCompiled,
	RoleLogA, RoleDepLogA, RoleLogB, RoleDepLogB,
}

// Path returns the path the set assigns to role.
func (s ArtifactSet) Path(role ArtifactRole) (string, error) {
	switch role {
	case RoleInput:
		return s.CleanedInput, nil
	case RoleWorkingCopy:
		return s.WorkingCopy, nil
	case RoleCompiled:
		return s.CompiledOutput, nil
	case RoleLogA:
		return s.LogA, nil
	case RoleLogB:
		return s.LogB, nil
	case RoleDepLogA:
		return s.DepLogA, nil
	case RoleDepLogB:
		return s.DepLogB, nil
	default:
		return "", fmt.Errorf("unknown artifact role: %q", role)
	}
}
