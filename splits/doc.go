// Package splits creates reproducible train/validation file lists.
//
// A split is a pure function of (paths, ratio, seed): the shuffle runs on a
// generator local to the call, so repeated or concurrent calls always agree
// and never disturb each other. Split lists are persisted as two small JSON
// files so downstream training code can load exactly the same partition.
package splits
