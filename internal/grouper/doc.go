/*
Package grouper splits a flat list of command-line tokens into ordered
argument groups.

A token beginning with "--" opens a new group; every other token is appended
to the group that is currently open. The package is purely syntactic: it does
not know which flags exist, it only tells flags apart from data.
*/
package grouper
