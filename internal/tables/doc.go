// Package tables holds the constant tables shared by the decoder stages:
// sampling rates, scale factor band edges for every transform length, the
// inverse quantisation table and scale factor gains.
package tables
