/*
Package steps converts sort algorithms into flat, replayable step lists.

Both builders work on a private copy of their input and are deterministic: the
same input always produces the same list. Only Swap steps change the order of
values; every other step is advisory and exists for the visualization.
*/
package steps
