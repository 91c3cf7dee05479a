// Package elements is the component API: one function per circuit element,
// each composing circuit.AddSimple/AddForced the way
// original_source/src/circapi.c's add_R/add_V/add_VCVS/... compose
// addsimple/addnullor, per spec.md §6's expansion table. V, VCVS and CCCS
// expand through a virtual node into two Y edges plus a nullor (forced
// edge); CCVS is one Z edge plus a nullor; an op-amp is a single nullor;
// VCCS and the passive elements are a single simple edge.
package elements
