// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package cache

// lruNode is a node in a doubly-linked LRU list.
// The node stores its key so eviction can delete the map entry in O(1).
type lruNode[K comparable] struct {
	key  K
	prev *lruNode[K]
	next *lruNode[K]
}

// lruList orders keys by recency: head is the most recently used, tail the
// least. Not safe for concurrent use; the owning shard holds the lock.
type lruList[K comparable] struct {
	head *lruNode[K]
	tail *lruNode[K]
	len  int
}

// Len returns the number of nodes in the list.
func (l *lruList[K]) Len() int {
	return l.len
}

// PushFront inserts key as the most recently used entry.
func (l *lruList[K]) PushFront(key K) *lruNode[K] {
	node := &lruNode[K]{key: key}
	l.linkFront(node)
	return node
}

// MoveToFront marks node as the most recently used entry.
func (l *lruList[K]) MoveToFront(node *lruNode[K]) {
	if node == nil || node == l.head {
		return
	}
	l.unlink(node)
	l.linkFront(node)
}

// RemoveOldest unlinks the least recently used node and returns its key.
func (l *lruList[K]) RemoveOldest() (K, bool) {
	if l.tail == nil {
		var zero K
		return zero, false
	}
	node := l.tail
	l.unlink(node)
	return node.key, true
}

// Clear drops every node.
func (l *lruList[K]) Clear() {
	l.head = nil
	l.tail = nil
	l.len = 0
}

func (l *lruList[K]) linkFront(node *lruNode[K]) {
	node.prev = nil
	node.next = l.head
	if l.head != nil {
		l.head.prev = node
	}
	l.head = node
	if l.tail == nil {
		l.tail = node
	}
	l.len++
}

func (l *lruList[K]) unlink(node *lruNode[K]) {
	if node.prev != nil {
		node.prev.next = node.next
	} else {
		l.head = node.next
	}
	if node.next != nil {
		node.next.prev = node.prev
	} else {
		l.tail = node.prev
	}
	node.prev = nil
	node.next = nil
	l.len--
}
