package constants

/*
Defines a set of base level
constants and enums to be used
throughout the pedigree service and
it's associated collaborators.
*/
type AssemblyId string
type InheritanceMode string
type Sex int
type Zygosity int
