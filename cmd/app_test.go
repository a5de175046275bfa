package cmd

import "testing"

func TestOpenStore(t *testing.T) {
	for _, kind := range []string{"file", "sqlite"} {
		t.Run(kind, func(t *testing.T) {
			oldDir, oldKind := *dataDir, *storageKind
			t.Cleanup(func() { *dataDir, *storageKind = oldDir, oldKind })
			*dataDir = t.TempDir()
			*storageKind = kind

			store, closeStore, err := OpenStore()
			if err != nil {
				t.Fatalf("OpenStore() error = %v", err)
			}
			defer closeStore()

			// First run seeds the example journal.
			if store.Len() == 0 {
				t.Error("fresh store is empty, expected seeded sessions")
			}
		})
	}
}

func TestOpenStore_UnknownBackend(t *testing.T) {
	oldKind := *storageKind
	t.Cleanup(func() { *storageKind = oldKind })
	*storageKind = "carrier-pigeon"

	if _, _, err := OpenStore(); err == nil {
		t.Error("OpenStore() accepted an unknown backend")
	}
}
