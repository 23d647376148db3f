// Package executability answers a single question: is there a file at a
// given path that the host operating system would allow to be invoked as a
// program? The answer is a plain boolean, every failure mode (missing file,
// inaccessible metadata, broken symbolic link) collapses to false, and no
// state is kept between calls. The check is operating system specific: POSIX
// systems consult the file's execute permission bits, Windows consults the
// PATHEXT extension allow-list and the file's binary type, and platforms with
// no notion of executable permissions degrade to an existence check.
package executability
