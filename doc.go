package ringbuf

// Package ringbuf provides a fixed-capacity circular buffer generic over its element
// type. All storage is allocated once at construction and no operation allocates
// afterwards. Every read and write comes in an unchecked variant that trusts the
// caller and a checked variant that reports full and empty conditions through its
// return value instead of corrupting data.
