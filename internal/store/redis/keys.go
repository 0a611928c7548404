package redis

const (
	// KeySnapshot is the single fixed key holding the serialized
	// {posts, selectedPost} snapshot.
	KeySnapshot = "ideahub:snapshot"
)

// SnapshotKey returns the Redis key for the post snapshot.
func SnapshotKey() string {
	return KeySnapshot
}
