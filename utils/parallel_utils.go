package utils

// PartitionMap splits the index range [0, MaxIndex) into ParallelDegree
// contiguous buckets with a maximum imbalance of one index between buckets.
type PartitionMap struct {
	MaxIndex       int
	ParallelDegree int
	Partitions     [][2]int // begin and end (exclusive) index per bucket
}

func NewPartitionMap(ParallelDegree, maxIndex int) (pm *PartitionMap) {
	pm = &PartitionMap{
		MaxIndex:       maxIndex,
		ParallelDegree: ParallelDegree,
		Partitions:     make([][2]int, ParallelDegree),
	}
	for n := 0; n < ParallelDegree; n++ {
		pm.Partitions[n] = pm.Split1D(n)
	}
	return
}

// Split1D computes bucket n directly: the first MaxIndex%ParallelDegree
// buckets carry one extra index each.
func (pm *PartitionMap) Split1D(n int) (bucket [2]int) {
	var (
		size      = pm.MaxIndex / pm.ParallelDegree
		remainder = pm.MaxIndex % pm.ParallelDegree
	)
	bucket[0] = n*size + min(n, remainder)
	bucket[1] = bucket[0] + size
	if n < remainder {
		bucket[1]++
	}
	return
}

// GetBucket returns the bucket containing global index k and its range, or
// bucketNum -1 when k is outside [0, MaxIndex).
func (pm *PartitionMap) GetBucket(k int) (bucketNum, kMin, kMax int) {
	_, bucketNum, kMin, kMax = pm.getBucketWithTryCount(k)
	return
}

func (pm *PartitionMap) getBucketWithTryCount(k int) (tryCount, bucketNum, kMin, kMax int) {
	// Proportional first guess, then walk toward the containing bucket.
	// With imbalance of at most one the guess is off by at most one.
	bucketNum = int(float64(pm.ParallelDegree*k) / float64(pm.MaxIndex))
	if bucketNum < 0 {
		bucketNum = 0
	} else if bucketNum >= pm.ParallelDegree {
		bucketNum = pm.ParallelDegree - 1
	}
	for !(pm.Partitions[bucketNum][0] <= k && k < pm.Partitions[bucketNum][1]) {
		if pm.Partitions[bucketNum][0] > k {
			bucketNum--
		} else {
			bucketNum++
		}
		if bucketNum == -1 || bucketNum == pm.ParallelDegree {
			return 0, -1, 0, 0
		}
		tryCount++
	}
	kMin, kMax = pm.Partitions[bucketNum][0], pm.Partitions[bucketNum][1]
	return
}

func (pm *PartitionMap) GetBucketRange(bn int) (kMin, kMax int) {
	kMin, kMax = pm.Partitions[bn][0], pm.Partitions[bn][1]
	return
}

func (pm *PartitionMap) GetBucketDimension(bn int) (kNum int) {
	if bn == -1 {
		kNum = pm.MaxIndex
		return
	}
	kMin, kMax := pm.GetBucketRange(bn)
	kNum = kMax - kMin
	return
}
