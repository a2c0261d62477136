// Code generated by hand for tests. DO NOT EDIT.

package demo

var g = opt.unwrap() + 0
