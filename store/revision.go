package store

import (
	"encoding/binary"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/pkg/errors"
)

// Revision identifies a state held by a store. It is a ULID whose entropy
// carries the dispatch sequence, so revisions sort in dispatch order.
type Revision string

const InitialRevision = Revision("00000000000000000000000000")

const RFC3339Milli = "2006-01-02T15:04:05.999Z07:00"

func EncodeRevision(t time.Time, sequence uint64) (Revision, error) {
	r := &ulid.ULID{}
	if err := r.SetTime(ulid.Timestamp(t)); err != nil {
		return "", errors.Wrap(err, "failed to encode revision time")
	}

	entropy := make([]byte, 10)
	binary.BigEndian.PutUint64(entropy[2:], sequence)

	if err := r.SetEntropy(entropy); err != nil {
		return "", errors.Wrap(err, "failed to encode revision sequence")
	}

	return Revision(r.String()), nil
}

// Sequence returns the dispatch sequence of the revision.
func (revision Revision) Sequence() (uint64, error) {
	parsed, err := ulid.Parse(revision.String())
	if err != nil {
		return 0, errors.Wrapf(err, "invalid revision %q", revision)
	}

	return binary.BigEndian.Uint64(parsed.Entropy()[2:]), nil
}

// Timestamp renders the time of the revision as RFC3339 with milliseconds.
func (revision Revision) Timestamp() (string, error) {
	parsed, err := ulid.Parse(revision.String())
	if err != nil {
		return "", errors.Wrapf(err, "invalid revision %q", revision)
	}

	return ulid.Time(parsed.Time()).UTC().Format(RFC3339Milli), nil
}

func (revision Revision) String() string {
	return string(revision)
}
