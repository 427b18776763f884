package types

// Disposition classifies what the pipeline should do with one discovered
// candidate. Dispositions are computed fresh each run and never persisted.
type Disposition string

const (
	// ConvertNow means the candidate has no usable conversion on disk and
	// must be encoded, backed up, and renamed this run.
	ConvertNow Disposition = "convert"

	// SkipAlreadyConverted means the lock file records a conversion for the
	// candidate and the converted file still exists on disk.
	SkipAlreadyConverted Disposition = "skip-already-converted"

	// SkipGeneratedArtifact means the candidate is itself the output of an
	// earlier conversion (it appears as a value in the lock file) and must
	// never be reprocessed.
	SkipGeneratedArtifact Disposition = "skip-generated"

	// SkipBackupExists means both the backup copy and the converted file
	// exist on disk but the lock file has no entry for the candidate: a
	// prior run converted it and the lock entry was lost. The entry is
	// repaired instead of reconverting.
	SkipBackupExists Disposition = "skip-backup-exists"
)

// Decision is the outcome of classifying one candidate.
type Decision struct {
	// Candidate is the discovered path, relative to the run's base
	// directory, slash-separated.
	Candidate string

	Disposition Disposition

	// BackupPath is where the original is (or would be) preserved: the
	// candidate's sub-path under the input root, mirrored under the output
	// root.
	BackupPath string

	// FinalPath is the converted file's path: the candidate's directory plus
	// its base name with the target format's extension.
	FinalPath string

	// Target is the converted path a replacement rule should point at. For
	// SkipAlreadyConverted it is the recorded lock value; for ConvertNow and
	// SkipBackupExists it equals FinalPath. Empty for SkipGeneratedArtifact.
	Target string
}

// ReplacementRule is one literal old-path -> new-path substitution applied to
// text files. Rules are derived from the lock file after every run, never
// accumulated incrementally.
type ReplacementRule struct {
	Old string
	New string
}
