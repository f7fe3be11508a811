package orders

const TopicActivity = "stockfront.activity"

// Partition key = order_id / product_id, supaya event satu entitas tetap berurutan.
func PartitionKey(id string) []byte { return []byte(id) }
