package favorites_test

import (
	"context"
	"encoding/json"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"manageme.app/hub/internal/favorites"
	"manageme.app/hub/internal/store"
)

type memKV struct {
	mu   sync.Mutex
	data map[string]string
}

func newMemKV() *memKV {
	return &memKV{data: make(map[string]string)}
}

func (kv *memKV) Get(_ context.Context, key string) (string, error) {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	v, ok := kv.data[key]
	if !ok {
		return "", store.ErrNotFound
	}
	return v, nil
}

func (kv *memKV) Set(_ context.Context, key, value string) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	kv.data[key] = value
	return nil
}

var _ = Describe("Repository", func() {
	var (
		ctx  context.Context
		kv   *memKV
		mem  *store.Memory
		repo *favorites.Repository
	)

	BeforeEach(func() {
		ctx = context.Background()
		kv = newMemKV()
		mem = store.NewMemory()
		Expect(store.SeedDemoData(ctx, mem)).To(Succeed())
		repo = favorites.NewRepository(kv, mem.Workspaces())
	})

	Describe("Toggle", func() {
		It("adds and removes a favorite", func() {
			favorited, err := repo.Toggle(ctx, "user-1", "workspace-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(favorited).To(BeTrue())

			ids, err := repo.IDs(ctx, "user-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(ids).To(Equal([]string{"workspace-1"}))

			favorited, err = repo.Toggle(ctx, "user-1", "workspace-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(favorited).To(BeFalse())

			ids, err = repo.IDs(ctx, "user-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(ids).To(BeEmpty())
		})

		It("refuses to favorite a workspace that does not exist", func() {
			_, err := repo.Toggle(ctx, "user-1", "workspace-404")
			Expect(err).To(MatchError(favorites.ErrNotFavoritable))
		})

		It("keeps the id list and the snapshots in step", func() {
			_, err := repo.Toggle(ctx, "user-1", "workspace-2")
			Expect(err).NotTo(HaveOccurred())

			snaps, err := repo.List(ctx, "user-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(snaps).To(HaveLen(1))
			Expect(snaps[0].ID).To(Equal("workspace-2"))
			Expect(snaps[0].Name).To(Equal("Personal Projects"))
		})

		It("isolates users from each other", func() {
			_, err := repo.Toggle(ctx, "user-1", "workspace-1")
			Expect(err).NotTo(HaveOccurred())

			ids, err := repo.IDs(ctx, "user-2")
			Expect(err).NotTo(HaveOccurred())
			Expect(ids).To(BeEmpty())
		})
	})

	Describe("List", func() {
		It("is empty for a user with no favorites", func() {
			snaps, err := repo.List(ctx, "user-5")
			Expect(err).NotTo(HaveOccurred())
			Expect(snaps).To(BeEmpty())
		})

		It("skips workspaces deleted since they were favorited", func() {
			_, err := repo.Toggle(ctx, "user-1", "workspace-1")
			Expect(err).NotTo(HaveOccurred())
			_, err = repo.Toggle(ctx, "user-1", "workspace-2")
			Expect(err).NotTo(HaveOccurred())

			Expect(mem.Workspaces().Delete(ctx, "workspace-2")).To(Succeed())

			// The snapshot write after the next toggle drops the dead id.
			_, err = repo.Toggle(ctx, "user-1", "workspace-1")
			Expect(err).NotTo(HaveOccurred())
			_, err = repo.Toggle(ctx, "user-1", "workspace-1")
			Expect(err).NotTo(HaveOccurred())

			snaps, err := repo.List(ctx, "user-1")
			Expect(err).NotTo(HaveOccurred())
			for _, s := range snaps {
				Expect(s.ID).NotTo(Equal("workspace-2"))
			}
		})
	})

	Describe("Prune", func() {
		It("drops a deleted workspace from every member's favorites", func() {
			_, err := repo.Toggle(ctx, "user-1", "workspace-1")
			Expect(err).NotTo(HaveOccurred())
			_, err = repo.Toggle(ctx, "user-2", "workspace-1")
			Expect(err).NotTo(HaveOccurred())

			repo.Prune(ctx, []string{"user-1", "user-2"}, "workspace-1")

			for _, userID := range []string{"user-1", "user-2"} {
				ids, err := repo.IDs(ctx, userID)
				Expect(err).NotTo(HaveOccurred())
				Expect(ids).To(BeEmpty())
			}
		})

		It("leaves unrelated favorites alone", func() {
			_, err := repo.Toggle(ctx, "user-1", "workspace-1")
			Expect(err).NotTo(HaveOccurred())
			_, err = repo.Toggle(ctx, "user-1", "workspace-2")
			Expect(err).NotTo(HaveOccurred())

			repo.Prune(ctx, []string{"user-1"}, "workspace-1")

			ids, err := repo.IDs(ctx, "user-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(ids).To(Equal([]string{"workspace-2"}))
		})
	})

	It("stores both keys as JSON under per-user names", func() {
		_, err := repo.Toggle(ctx, "user-1", "workspace-1")
		Expect(err).NotTo(HaveOccurred())

		kv.mu.Lock()
		defer kv.mu.Unlock()

		var ids []string
		Expect(json.Unmarshal([]byte(kv.data["project-favorites:user-1"]), &ids)).To(Succeed())
		Expect(ids).To(Equal([]string{"workspace-1"}))

		var snaps []favorites.Snapshot
		Expect(json.Unmarshal([]byte(kv.data["favorite-projects:user-1"]), &snaps)).To(Succeed())
		Expect(snaps).To(HaveLen(1))
	})
})
