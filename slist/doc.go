// Package slist implements a minimal generic singly-linked list.
//
// It reifies the small dynamic sequences the circuit package needs to carry
// around: the forced-edge list and each adjacency head's tail sublist. Both
// only ever need push-to-front and forward iteration, so the list stays
// deliberately thin rather than growing into a general-purpose container.
package slist
