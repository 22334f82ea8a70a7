// Package pyenv locates the Python interpreter for the current
// environment and runs pip installs through it. Installing via
// `python -m pip` keeps packages in the interpreter's own environment,
// matching how the upstream optimizer libraries are consumed.
package pyenv
