// Package httpapi exposes the signup form over HTTP using chi. One
// submission controller backs every request; field updates and submits are
// serialised by the field store.
package httpapi
