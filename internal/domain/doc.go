// Package domain contains the core model for datasplit.
//
// The domain does not touch the filesystem: it defines items, proportions and the
// split allocation rule. Infra adapters discover, pair and copy files around it.
package domain
