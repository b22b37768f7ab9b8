// Command substation converts SRT subtitles into styled ASS files, either
// one-shot or through a persistent batch queue.
package main
