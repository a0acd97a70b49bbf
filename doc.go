/*
Package wstg-upload publishes the OWASP Web Security Testing Guide checklist workbook to Google Drive.

wstg-upload replaces the content of an existing Google Drive file with the checklist workbook
(checklists/checklist.xlsx), renames the file to WSTG-Checklist[-<version>].xlsx and grants read
access to anyone with the link. It is intended to be run from a release pipeline.

wstg-upload supports the following commands:

  - upload, to upload, rename and share the checklist (the default command)
  - authorise, to authorise access to Google Drive and cache the OAuth2 token
  - version, to display the current version
  - help, to display the command usage
*/
package upload
