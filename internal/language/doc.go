// Package language holds the DeepL language code allow-lists and
// validation helpers. Source and destination lists differ: English and
// Portuguese have regional variants on the destination side only.
package language
