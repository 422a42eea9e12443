package iostore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSnapshotEntry(t *testing.T) {
	tests := []struct {
		name    string
		fields  map[string]string
		wantErr string
	}{
		{
			name:   "valid",
			fields: map[string]string{fieldValue: "payload", fieldVersion: "2", fieldTimestamp: "1700000000"},
		},
		{
			name:    "corrupt version",
			fields:  map[string]string{fieldValue: "payload", fieldVersion: "two", fieldTimestamp: "1700000000"},
			wantErr: "corrupt version for snapshot term1",
		},
		{
			name:    "corrupt timestamp",
			fields:  map[string]string{fieldValue: "payload", fieldVersion: "2", fieldTimestamp: "yesterday"},
			wantErr: "corrupt timestamp for snapshot term1",
		},
		{
			name:    "missing value",
			fields:  map[string]string{fieldVersion: "2", fieldTimestamp: "1700000000"},
			wantErr: "snapshot term1 has no value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, version, ts, err := parseSnapshotEntry("term1", tt.fields)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Nil(t, value)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, []byte("payload"), value)
			assert.Equal(t, 2, version)
			assert.Equal(t, int64(1700000000), ts)
		})
	}
}

func TestNewRedisSnapshotStore_InvalidURL(t *testing.T) {
	store, err := NewRedisSnapshotStore(snapshotTable, "not-a-redis-url")
	assert.Error(t, err)
	assert.Nil(t, store)
}
