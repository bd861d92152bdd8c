// Package hcl provides the concrete HCL implementation of the config
// package's Loader and Decoder interfaces: scenario file discovery and
// parsing, HCL-to-model translation, and cty-to-Go argument binding.
package hcl
