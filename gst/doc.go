// Package gst implements an in-memory generalized suffix tree: an index
// over many (string, id) pairs that answers, for any query string Q, the
// set of ids whose string contains Q as a substring.
package gst

/*

# Motivation

A generalized suffix tree indexes every suffix of every inserted string at
once, sharing structure between strings the way a trie shares prefixes.
Once built, a query of length m costs O(m) to locate plus the cost of
reading off whichever ids are attached to the matched subtree - there is
no scan of the indexed strings at query time.

Building the tree suffix-by-suffix naively costs O(n^2) for a string of
length n. Ukkonen's algorithm builds the tree of all suffixes of one
string in amortized O(n), processing the string left to right and
extending every existing suffix by one character per step rather than
restarting from the root for each suffix independently.

This package generalizes Ukkonen's construction to many strings sharing
one tree, and propagates a per-string id to every node that participates
in representing that string, along the suffix-link chain, so that a
match anywhere in the tree can report every id whose string contains the
matched substring.

# Approach & sources

The implementation follows the construction set out in:

  Esko Ukkonen, "On-line construction of suffix trees", Algorithmica 14
  (1995), 249-260.

and the generalization to multiple strings, including the leaf-reuse
departure from the single-string algorithm (a new key's suffix may
re-enter a branch already created by an earlier key), described in:

  Dan Gusfield, "Algorithms on Strings, Trees, and Sequences" (1997),
  chapter 6 and chapter 7.

In summary:

  - The tree is built character by character. After processing a
    prefix, the tree is the correct suffix tree for *that prefix alone*
    (the "implicit suffix tree" property); only the last character's
    extension ever needs doing, because of Ukkonen's "once a leaf,
    always a leaf" and "no early stop on an existing leaf" observations.

  - The "active point" - a (node, pending-string) locus - tracks where
    the next extension starts. canonize walks it to its canonical form:
    the node reached by the longest prefix of the pending string that is
    entirely consumed by existing edges.

  - testAndSplit asks "is the next character already represented here?"
    and, if not, splits an edge to make room for a new branch - this is
    the only point at which new internal nodes are created other than as
    leaves.

  - Suffix links connect an internal node representing a string xα to
    the node representing α. They let the active point jump from one
    extension to the next without re-walking from the root, which is
    what makes the amortized cost linear. Wiring them correctly between
    two internal nodes created in successive extensions of the same
    character is update's central bookkeeping job, tracked via the
    oldRoot variable.

  - Generalizing to many strings means a branch the algorithm wants to
    create for key K may already exist, created earlier by some other
    key sharing that substring. In that case the existing leaf or
    internal node is reused rather than recreated, and the new key's id
    is attached to it via addRef, which walks the suffix-link chain
    upward, attaching the id to every ancestor, stopping as soon as it
    finds one that already carries it (by construction, every node
    reachable above that one already carries it too).

# Node store & cyclic references

Downward edges and suffix links together make the node graph cyclic in
the general sense (suffix links can point to an ancestor-of-an-ancestor
context, not just strictly downward), but the suffix-link graph itself,
restricted to internal nodes, is a forest: every link points to a
strictly shorter suffix, so following links from any node terminates at
the root. Nodes are never freed while a Tree is alive, so plain Go
pointers are sufficient; there is no need for an external arena or
generation-tagged handles. That tradeoff only bites for a durable,
on-disk index, where handles into a flat record store become
unavoidable - this index stays purely in memory, so it does not apply
here.

*/
